package renderer

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;
out vec2 vUV;

void main() {
    vNormal = mat3(uModel) * aNormal;
    vUV = aUV;
    gl_Position = uProjection * uView * uModel * vec4(aPosition, 1.0);
}
`

const fragmentShader = `
#version 410 core

in vec3 vNormal;
in vec2 vUV;

uniform sampler2D uTexture;
uniform vec3 uColor;
uniform float uAmbient;
uniform int uLightCount;
uniform vec3 uLightDir[4];
uniform vec3 uLightColor[4];

out vec4 FragColor;

void main() {
    // Faces seen from behind are lit like their front side.
    vec3 n = normalize(gl_FrontFacing ? vNormal : -vNormal);

    vec3 light = vec3(uAmbient);
    for (int i = 0; i < uLightCount; i++) {
        light += uLightColor[i] * max(dot(n, uLightDir[i]), 0.0);
    }

    vec4 tex = texture(uTexture, vUV);
    FragColor = vec4(tex.rgb * uColor * min(light, vec3(1.0)), tex.a);
}
`
