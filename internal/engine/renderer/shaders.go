package renderer

const cellVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec3 vColor;
out vec3 vNormal;

void main() {
    vColor = aColor;
    vNormal = mat3(uModel) * aNormal;
    gl_Position = uViewProj * uModel * vec4(aPos, 1.0);
}
`

const cellFragmentShader = `#version 410 core
in vec3 vColor;
in vec3 vNormal;

uniform vec3 uLightDir;
uniform float uHighlight;

out vec4 FragColor;

void main() {
    float diffuse = max(abs(dot(normalize(vNormal), normalize(uLightDir))), 0.0);
    vec3 color = vColor * (0.45 + 0.55 * diffuse);
    color = mix(color, vec3(1.0), uHighlight);
    FragColor = vec4(color, 1.0);
}
`

const lineVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;

uniform mat4 uViewProj;

void main() {
    gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const lineFragmentShader = `#version 410 core
uniform vec3 uColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(uColor, 1.0);
}
`
